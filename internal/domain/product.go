package domain

import "slices"

type ProductID int64

type Product struct {
	ID       ProductID `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Comments []string  `json:"comments"`
}

// Clone returns a deep copy so snapshots never share comment storage.
func (p Product) Clone() Product {
	p.Comments = slices.Clone(p.Comments)
	if p.Comments == nil {
		p.Comments = []string{}
	}
	return p
}

// WithComment returns a copy of p with comment appended.
func (p Product) WithComment(comment string) Product {
	next := p.Clone()
	next.Comments = append(next.Comments, comment)
	return next
}

func CloneProducts(products []Product) []Product {
	cloned := make([]Product, 0, len(products))
	for _, product := range products {
		cloned = append(cloned, product.Clone())
	}
	return cloned
}
