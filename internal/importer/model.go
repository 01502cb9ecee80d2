package importer

type SheetResult struct {
	Sheet   string `json:"sheet"`
	Rows    int    `json:"rows"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
	Reason  string `json:"reason,omitempty"`
}

type Result struct {
	Created int           `json:"created"`
	Skipped int           `json:"skipped"`
	Sheets  []SheetResult `json:"sheets"`
}
