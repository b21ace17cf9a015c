package model

// Static geographic reference data: State → District → Taluka → City.
// Read-only; filtered by parent id and active status.

type State struct {
	ID     uint   `json:"id" gorm:"primarykey"`
	Name   string `json:"name" gorm:"type:varchar(100);not null"`
	Status int    `json:"status" gorm:"default:1"`
}

type District struct {
	ID      uint   `json:"id" gorm:"primarykey"`
	StateID uint   `json:"state_id" gorm:"index;not null"`
	Name    string `json:"name" gorm:"type:varchar(100);not null"`
	Status  int    `json:"status" gorm:"default:1"`
}

type Taluka struct {
	ID         uint   `json:"id" gorm:"primarykey"`
	DistrictID uint   `json:"district_id" gorm:"index;not null"`
	Name       string `json:"name" gorm:"type:varchar(100);not null"`
	Status     int    `json:"status" gorm:"default:1"`
}

type City struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	TalukaID uint   `json:"taluka_id" gorm:"index;not null"`
	Name     string `json:"name" gorm:"type:varchar(100);not null"`
	Status   int    `json:"status" gorm:"default:1"`
}
