package dto

// FormOptionsResponse carries the dropdown/autocomplete lists for the quote
// form: static seeds merged with values typed in past submissions.
type FormOptionsResponse struct {
	Countries      []string `json:"countries"`
	Commodities    []string `json:"commodities"`
	Salespersons   []string `json:"salespersons"`
	CargoTypes     []string `json:"cargo_types"`
	ContainerTypes []string `json:"container_types"`
	ContainerSizes []string `json:"container_sizes"`
	PackagingTypes []string `json:"packaging_types"`
}
