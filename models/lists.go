package models

// Static dropdown/autocomplete seed lists. Loaded once at startup and never
// mutated; user-typed values from past submissions are merged in at read
// time by the lists flow.

// Countries seeds the origin/destination autocomplete. The tail entries are
// port spellings accumulated from historical rate sheets.
var Countries = []string{
	"Pakistan", "United Arab Emirates", "Saudi Arabia", "Qatar", "Oman",
	"Kuwait", "Bahrain", "Turkey", "China", "India", "Afghanistan",
	"Uzbekistan", "Kazakhstan", "Turkmenistan", "Kyrgyzstan", "Tajikistan",
	"USA", "UK", "Germany", "France", "Italy", "Spain", "Netherlands",
	"Malaysia", "Indonesia", "Singapore", "Japan", "South Korea", "Australia",
	"Karachi Port",
	"Ladkrabang, Bangkok.",
	"Aqaba Port",
	"Shanghai/Taicang/Ningbo Port",
	"Mersin Port",
	"Abu-Dhabi",
	"Jabel Ali Port",
	"Bandar Abbas Port",
	"Nava Sheva Port",
	"Jizzakh",
	"Yokohama Port",
	"Bahrain Port",
	"Qingdao port",
	"Dekhkanabad",
	"Ras Al Khaimah",
	"Shanghai",
	"Taicang",
	"Shanghai/Qingdao Port",
	"Daegu",
	"Nhava Sheva port/Mundra port",
	"Muscat",
	"Taijin Port",
	"Abu Dhabi",
	"Conrad, USA",
	"Dubai",
	"Bandar Abbas",
	"Klang port",
	"Jebel Ali",
	"UAE",
	"ICD Ludhiana",
	"Korea",
	"Jebel ALi Port",
	"Shenzhen",
	"Ningbo",
	"Yiwu",
	"Czech Republic",
	"Fujairah",
	"Vizag (Visakhapatnam) Port",
	"Yiwu City",
	"Yiwu City/Ningbo",
	"Nhava Sheva/Mundra Port",
	"Klaipeda Port",
	"Qingdao/LYG port",
	"Jebel Ali/Bandar Abbas Port Port",
	"Tashkent",
	"Aveiro",
	"Islam Qila/Herat",
	"Islam Qila",
	"Herat",
	"Chennai Port",
	"Karachi/Bandar Abbas Port",
	"Chittagong port",
	"Bandar Abbas Port/Herat Custom",
	"Herat customs",
	"LYG/Qingdao Port",
	"Tbilisi Port",
	"Karachi/Mersin/Poti Port",
	"Towrgondi",
	"Poti Port",
	"Karachi/Chittagong/Nava Sheva Port",
	"Bandar Abbas/LYG/Qingdao port",
	"Dar es Salaam/Mombasa port",
	"Mombasa port",
	"Belfast Port",
	"Rotterdam",
	"Umm Qasr/Dammam/Jebel Ali /Latakia/Beirut/Aqaba Port",
	"Almaty",
}

var BaseCommodities = []string{
	"Food Item", "Pharmaceutical Products", "Automobile Parts", "Solar Modules",
	"CT Scan Machine", "General Cargo", "Paper Product", "Tea", "Cement",
	"Medicines", "Buffalo Meat", "Basalt Product", "Sausages", "Agrochemical",
	"Electronic Items", "Calcium Hypochlorite 65%", "Potassium Chloride",
	"Spare Parts", "Tea & Animal Nurtition Feed", "Equipments", "Potassium Nitrate",
	"Technical Salt", "Rice", "Machinery", "Chemicals", "Herbal Medicins",
	"Hardware", "Tires", "Used Textile Machinery", "Soap Noodles", "Vehicles",
	"Lubricants", "Spandex Yarn", "Medical Equipment", "Empty Container",
	"Liquid OIl", "FIber Cabels", "Electrical Equipment", "ALu ALu Foil",
	"Medical Diluents and Machines", "Veterinary / Livestock Farming Equipment",
	"Multipurpose Tents", "Composite Rod", "Armored Vehicle", "Steel Bloom",
	"Battery", "Surgical Disposable Item",
}

var Salespersons = []string{"Sulaiman", "Ahmed", "Dawood"}

var CargoTypes = []string{
	"General Cargo", "Containerized Cargo", "Bulk Cargo (Dry Bulk)", "Liquid Bulk Cargo",
	"Break Bulk Cargo", "Project Cargo", "Perishable Cargo", "DG Dangerous / Hazardous Cargo",
	"Roll-on/Roll-off (RoRo) Cargo", "Temperature-Controlled (Reefer) Cargo",
}

var ContainerTypes = []string{
	"Dry Container (General Purpose)",
	"High Cube Container",
	"Reefer Container",
	"Open Top Container",
	"Flat Rack Container",
	"Tank Container",
	"Open Side Container",
	"Ventilated Container",
	"Insulated Container",
}

var ContainerSizes = []string{
	"20ft",
	"40ft",
}

var PackagingTypes = []string{
	"Loose Cargo", "Palletized (Stackable)", "Palletized (non-stackable)", "Floor-Loaded",
	"Carton Packed", "Crated", "Drummed", "Bagged / Sacked", "Jumbo Bags (FIBC)",
	"Baled", "Bundled", "Coiled / Rolled", "IBC Packed", "Unitized", "Shrink-Wrapped",
	"Breakbulk Packed", "Stackable", "Non-Stackable", "Top-Load Only", "Fragile",
	"Overweight", "Out of Gauge (OOG)",
}
