package entity

// Patient is a registry record. Optional fields default to their zero
// values when absent from the table file.
type Patient struct {
	ID      string `csv:"id" json:"id"`
	Name    string `csv:"name" json:"name"`
	Age     int    `csv:"age" json:"age"`
	Gender  string `csv:"gender" json:"gender"`
	Disease string `csv:"disease" json:"disease"`
	Photo   string `csv:"photo" json:"photo,omitempty"`
	Created string `csv:"created" json:"created"`
}
