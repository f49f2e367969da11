package entities

// CoinPackage is a purchasable bundle of coins.
type CoinPackage struct {
	ID    string  `json:"id" yaml:"id"`
	Title string  `json:"title" yaml:"title"`
	Coins int64   `json:"coins" yaml:"coins"`
	Price float64 `json:"price" yaml:"price"`
}

// Plan is a condo subscription tier.
type Plan struct {
	ID    string  `json:"id" yaml:"id"`
	Title string  `json:"title" yaml:"title"`
	Price float64 `json:"price" yaml:"price"`
}

// Catalog lists what can be bought through checkout.
type Catalog struct {
	CoinPackages []CoinPackage `json:"coin_packages" yaml:"coin_packages"`
	Plans        []Plan        `json:"plans" yaml:"plans"`
}

func (c Catalog) CoinPackage(id string) (CoinPackage, bool) {
	for _, p := range c.CoinPackages {
		if p.ID == id {
			return p, true
		}
	}
	return CoinPackage{}, false
}

func (c Catalog) Plan(id string) (Plan, bool) {
	for _, p := range c.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
