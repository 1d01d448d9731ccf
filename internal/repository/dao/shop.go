package dao

import "context"

const selectShops = `SELECT shop_id, shop_name, slogan, stock_value FROM shops ORDER BY shop_id`

type ShopDAO struct {
	store *Store
}

func NewShopDAO(store *Store) *ShopDAO {
	return &ShopDAO{
		store: store,
	}
}

func (d *ShopDAO) FindAll(ctx context.Context) (Result, error) {
	return d.store.Execute(ctx, selectShops)
}
