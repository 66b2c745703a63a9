package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/bnema/shopeasy-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const noSelection = -1

// Snapshot is the state a catalog view is drawn from.
type Snapshot struct {
	Products []domain.Product
	Cart     []domain.Product
	Drafts   map[domain.ProductID]string
}

type RenderOptions struct {
	Title string
	// Selected is the index of the highlighted product; negative means none.
	Selected int
	HideCart bool
}

func DefaultOptions() RenderOptions {
	return RenderOptions{Title: "ShopEasy", Selected: noSelection}
}

// View draws the listing and cart without going through a bubbletea program,
// for callers that already run one.
func View(snapshot Snapshot, opts RenderOptions) string {
	return renderView(snapshot, opts, newStyles())
}

func renderView(snapshot Snapshot, opts RenderOptions, s styles) string {
	title := opts.Title
	if title == "" {
		title = "ShopEasy"
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("products: %d", len(snapshot.Products))),
	}

	if len(snapshot.Products) == 0 {
		lines = append(lines, s.empty.Render("No products available."))
	}

	for i, product := range snapshot.Products {
		lines = append(lines, s.section.Render(renderProduct(product, snapshot.Drafts[product.ID], i == opts.Selected, s)))
	}

	if !opts.HideCart {
		lines = append(lines, s.section.Render(renderCart(snapshot.Cart, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProduct(product domain.Product, draft string, selected bool, s styles) string {
	nameStyle := s.product
	marker := "  "
	if selected {
		nameStyle = s.selected
		marker = "> "
	}

	parts := []string{
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			nameStyle.Render(marker+SanitizeText(product.Name)),
			" ",
			s.header.Render(fmt.Sprintf("#%d", product.ID)),
			" ",
			s.price.Render(FormatPrice(product.Price)),
		),
	}

	if len(product.Comments) == 0 {
		parts = append(parts, s.empty.Render("  no comments yet"))
	}
	for _, comment := range product.Comments {
		parts = append(parts, s.comment.Render("- "+SanitizeText(comment)))
	}

	if draft != "" {
		parts = append(parts, s.draft.Render("draft: "+SanitizeText(draft)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderCart(cart []domain.Product, s styles) string {
	lines := []string{s.title.Render(CartTitle(len(cart)))}
	for _, item := range cart {
		lines = append(lines, s.cartItem.Render(fmt.Sprintf("- %s - %s", SanitizeText(item.Name), FormatPrice(item.Price))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func CartTitle(n int) string {
	return fmt.Sprintf("Cart (%d items)", n)
}

// FormatPrice prints the shortest decimal form, e.g. $2 or $5.5.
func FormatPrice(price float64) string {
	return "$" + strconv.FormatFloat(price, 'f', -1, 64)
}

// SanitizeText drops control characters so backend-supplied text cannot
// carry terminal escape sequences. Markup is shown literally.
func SanitizeText(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}
