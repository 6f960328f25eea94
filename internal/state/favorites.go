package state

import (
	"slices"

	"movie-reviews/internal/data/entity"
)

type FavoriteList struct {
	Favorites []entity.Favorite
}

type FavoritesLoaded struct {
	Favorites []entity.Favorite
}

// ReduceFavoriteList stores favorites most recently added first.
func ReduceFavoriteList(prev FavoriteList, ev FavoritesLoaded) FavoriteList {
	sorted := slices.Clone(ev.Favorites)
	slices.SortStableFunc(sorted, func(a, b entity.Favorite) int {
		return b.FavoritedAt.Compare(a.FavoritedAt)
	})
	return FavoriteList{Favorites: sorted}
}

func (l FavoriteList) Empty() bool {
	return len(l.Favorites) == 0
}
