package valueobjects

import "fmt"

// Category groups notifications by the business event that produced them.
type Category string

const (
	CategorySystem       Category = "system"
	CategoryOrder        Category = "order"
	CategoryTicket       Category = "ticket"
	CategorySubscription Category = "subscription"
	CategorySecurity     Category = "security"
)

var validCategories = map[Category]bool{
	CategorySystem:       true,
	CategoryOrder:        true,
	CategoryTicket:       true,
	CategorySubscription: true,
	CategorySecurity:     true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid notification category: %s", s)
	}
	return c, nil
}
