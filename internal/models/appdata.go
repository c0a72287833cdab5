package models

// AppData is the persisted snapshot shape: everything the store owns,
// minus predefined categories, which are compiled in and never saved.
type AppData struct {
	Transactions []Transaction `json:"transactions"`
	Categories   []Category    `json:"categories"`
	Budgets      []Budget      `json:"budgets"`
}
