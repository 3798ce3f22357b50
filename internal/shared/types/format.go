package types

// OutputFormat selects the file export written next to the console table.
type OutputFormat string

const (
	FormatCSV  OutputFormat = "csv"
	FormatHTML OutputFormat = "html"
	FormatJSON OutputFormat = "json"
	FormatText OutputFormat = "text"
	FormatPDF  OutputFormat = "pdf"
)

// Alignment is passed as a column option to TableInterface.AddColumn.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)
