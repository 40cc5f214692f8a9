package models

// User es una fila de users.dat (UserID::Gender::Age::Occupation::Zip-code).
type User struct {
	UserID     int    `json:"userId"`
	Gender     string `json:"gender"`
	Age        int    `json:"age"`
	Occupation int    `json:"occupation"`
	ZipCode    string `json:"zipCode"`
}
