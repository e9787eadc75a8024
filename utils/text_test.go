package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("TrimsLowersAndCollapses", func(t *testing.T) {
		assert.Equal(t, "karachi port", Normalize("  Karachi   Port  "))
	})

	t.Run("UnifiesDashesAndNBSP", func(t *testing.T) {
		assert.Equal(t, "torkham - kabul", Normalize("Torkham – Kabul"))
		assert.Equal(t, "a - b", Normalize("A — B"))
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("   "))
	})

	t.Run("Idempotent", func(t *testing.T) {
		inputs := []string{"", "  Karachi  ", "A–B", "x y", "ALready lower"}
		for _, s := range inputs {
			once := Normalize(s)
			assert.Equal(t, once, Normalize(once))
		}
	})
}

func TestContainsNormalized(t *testing.T) {
	assert.True(t, ContainsNormalized("Karachi Port", "karachi"))
	assert.True(t, ContainsNormalized("via  CHAMAN border", "Chaman"))
	assert.False(t, ContainsNormalized("Karachi", "Dushanbe"))
	assert.False(t, ContainsNormalized("anything", "  "))
}

func TestReversePath(t *testing.T) {
	t.Run("ReversesWaypoints", func(t *testing.T) {
		in := "Karachi → Chaman Border → Kabul"
		assert.Equal(t, "Kabul → Chaman Border → Karachi", ReversePath(in))
	})

	t.Run("SingleWaypointUnchanged", func(t *testing.T) {
		assert.Equal(t, "Karachi", ReversePath("Karachi"))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", ReversePath(""))
	})

	t.Run("DropsEmptySegments", func(t *testing.T) {
		assert.Equal(t, "B → A", ReversePath("A →  → B"))
	})
}
