package entities

type Product struct {
	ID       string
	Name     string
	Price    int
	Category string
	Image    string
}
