package entity

type Doctor struct {
	ID             string `csv:"id" json:"id"`
	Name           string `csv:"name" json:"name"`
	Specialization string `csv:"specialization" json:"specialization"`
	Photo          string `csv:"photo" json:"photo,omitempty"`
}
