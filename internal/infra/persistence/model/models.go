// Package model holds the GORM persistence models of the postgres store.
package model

// All lists every persistence model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&UserDeviceModel{},
		&NotificationModel{},
		&MenuItemModel{},
		&OrderModel{},
		&DeletedOrderModel{},
		&OutboxTaskModel{},
		&ShiftModel{},
		&CheckInModel{},
	}
}
