package view

import "strings"

type NavItem struct {
	Label  string
	Href   string
	Active bool
}

var navLinks = []NavItem{
	{Label: "Home", Href: "/"},
	{Label: "Movies", Href: "/movies"},
	{Label: "Reviews", Href: "/reviews"},
	{Label: "Favorites", Href: "/favorites"},
}

// Navigation marks the link whose path is a segment prefix of current.
// Home is active only on "/" itself.
func Navigation(current string) []NavItem {
	items := make([]NavItem, len(navLinks))
	for i, link := range navLinks {
		items[i] = link
		if link.Href == "/" {
			items[i].Active = current == "/"
			continue
		}
		items[i].Active = current == link.Href || strings.HasPrefix(current, link.Href+"/")
	}
	return items
}
