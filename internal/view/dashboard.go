package view

import "github.com/JonMunkholm/itams/internal/asset"

// Card is one dashboard tile.
type Card struct {
	Category asset.Category
	Title    string
	Subtitle string
	URL      string
}

// Dashboard lists one card per category, in category order.
func Dashboard() []Card {
	cards := make([]Card, len(asset.Categories))
	for i, c := range asset.Categories {
		cards[i] = Card{
			Category: c,
			Title:    string(c),
			Subtitle: "Kelola aset " + string(c),
			URL:      CategoryPath(c),
		}
	}
	return cards
}
