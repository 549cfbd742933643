package models

const (
	ShopperStatusBrowsing = "browsing"
	ShopperStatusDone     = "done"

	OutputFormatConsole = "console"
	OutputFormatCSV     = "csv"
	OutputFormatJSON    = "json"
	OutputFormatParquet = "parquet"
)

// DefaultItemCatalog is the standard twelve-good market catalog used when the
// config does not supply one.
var DefaultItemCatalog = []string{
	"apples", "bananas", "bread", "cheese", "eggs", "fish",
	"honey", "milk", "olives", "rice", "spices", "tomatoes",
}

// DefaultStallPositions places six stalls along the y=0 axis.
var DefaultStallPositions = []float64{-20, -12, -4, 4, 12, 20}
