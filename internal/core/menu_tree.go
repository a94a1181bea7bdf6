package core

import (
	"context"
	"sort"
)

// MenuTreeNode is a root menu together with its ordered submenus.
type MenuTreeNode struct {
	Menu
	Children []Menu `json:"children"`
}

func sortMenus(menus []Menu) {
	sort.SliceStable(menus, func(i, j int) bool {
		if menus[i].Ordering != menus[j].Ordering {
			return menus[i].Ordering < menus[j].Ordering
		}
		return menus[i].ID < menus[j].ID
	})
}

func assembleMenuTree(menus []Menu) []MenuTreeNode {
	sortMenus(menus)
	var roots []MenuTreeNode
	index := make(map[int64]int)
	for _, m := range menus {
		if m.RootID == nil {
			index[m.ID] = len(roots)
			roots = append(roots, MenuTreeNode{Menu: m})
		}
	}
	for _, m := range menus {
		if m.RootID == nil {
			continue
		}
		at, ok := index[*m.RootID]
		if !ok {
			// submenu pointing at a missing root is dropped
			continue
		}
		roots[at].Children = append(roots[at].Children, m)
	}
	return roots
}

// ListMenuTree assembles the navigation tree from the flat menu table: root
// menus ordered by Ordering then id, each carrying its submenus in the same
// order. The tree is rebuilt on every call and never persisted nested.
func (s *Service) ListMenuTree(ctx context.Context) []MenuTreeNode {
	return assembleMenuTree(listRecords[Menu](s, EntityMenu, PageSpec{SortAsc: true}))
}

// ListMenuTreeForAccessList assembles the navigation tree restricted to the
// menus granted by the access list. Roots not granted are dropped along with
// their submenus.
func (s *Service) ListMenuTreeForAccessList(ctx context.Context, accessListID int64) ([]MenuTreeNode, bool) {
	list, ok := getRecord[AccessList](s, EntityAccessList, accessListID)
	if !ok {
		return nil, false
	}
	granted := make(map[int64]bool, len(list.MenuIDs))
	for _, id := range list.MenuIDs {
		granted[id] = true
	}
	all := listRecords[Menu](s, EntityMenu, PageSpec{SortAsc: true})
	kept := make([]Menu, 0, len(all))
	for _, m := range all {
		if granted[m.ID] {
			kept = append(kept, m)
		}
	}
	return assembleMenuTree(kept), true
}
