package service

// Export is a spreadsheet ready to be relayed to the caller.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}
