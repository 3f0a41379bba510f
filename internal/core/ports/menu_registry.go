package ports

// RawMenuItem is one row from the host's live admin-menu registry.
type RawMenuItem struct {
	Title string
	Slug  string
}

// MenuRegistry exposes the host's registered admin menus. Reading it is the
// expensive operation the menu slug cache exists to avoid.
//
//go:generate mockgen -source=menu_registry.go -destination=mocks/mock_menu_registry.go -package=mocks
type MenuRegistry interface {
	// TopLevel returns the ordered top-level menu entries.
	TopLevel() ([]RawMenuItem, error)

	// Submenus returns submenu entries grouped by parent slug, ordered
	// within each parent.
	Submenus() (map[string][]RawMenuItem, error)
}
