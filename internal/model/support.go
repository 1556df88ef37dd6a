package model

import (
	"time"
)

// SupportPurpose 支援用途
type SupportPurpose string

const (
	PurposeTravel    SupportPurpose = "travel"    // 遠征費
	PurposeEquipment SupportPurpose = "equipment" // 用具代
	PurposeFood      SupportPurpose = "food"      // 食費
	PurposeTransport SupportPurpose = "transport" // 交通費
	PurposeCoaching  SupportPurpose = "coaching"  // コーチング費
	PurposeOther     SupportPurpose = "other"     // その他
)

func (p SupportPurpose) Valid() bool {
	switch p {
	case PurposeTravel, PurposeEquipment, PurposeFood, PurposeTransport, PurposeCoaching, PurposeOther:
		return true
	}
	return false
}

// PurposeLabels 用途展示文案
var PurposeLabels = map[SupportPurpose]string{
	PurposeTravel:    "遠征費",
	PurposeEquipment: "用具代",
	PurposeFood:      "食費",
	PurposeTransport: "交通費",
	PurposeCoaching:  "コーチング費",
	PurposeOther:     "その他",
}

// PaymentMethod 支付方式
type PaymentMethod string

const (
	PaymentWallet      PaymentMethod = "wallet"
	PaymentCard        PaymentMethod = "card"
	PaymentConvenience PaymentMethod = "convenience"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentWallet, PaymentCard, PaymentConvenience:
		return true
	}
	return false
}

// PaymentMethodLabels 支付方式展示文案
var PaymentMethodLabels = map[PaymentMethod]string{
	PaymentWallet:      "アプリ内ウォレット",
	PaymentCard:        "クレジットカード",
	PaymentConvenience: "コンビニ払い",
}

// Support 支援记录（fan → athlete），只追加不修改
type Support struct {
	ID            string         `gorm:"primaryKey;type:varchar(36)"`
	FanID         string         `gorm:"type:varchar(36);index:idx_support_fan;not null"`
	AthleteID     string         `gorm:"type:varchar(36);index:idx_support_athlete;not null"`
	Amount        int64          `gorm:"not null"` // 整数日元
	Purpose       SupportPurpose `gorm:"type:varchar(16);not null"`
	PaymentMethod PaymentMethod  `gorm:"type:varchar(16);not null"`
	Message       string         `gorm:"type:text"`
	PostID        string         `gorm:"type:varchar(36)"`
	Remote        bool           `gorm:"not null;default:false"` // 远端落库成功
	CreatedAt     time.Time      `gorm:"index"`
}

func (Support) TableName() string { return "supports" }

// SupportTotal 支援累计（(fan, athlete) 维度），同步维护，可由 supports 重建
type SupportTotal struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	FanID     string `gorm:"type:varchar(36);index:idx_total_pair,unique;not null"`
	AthleteID string `gorm:"type:varchar(36);index:idx_total_pair,unique;not null"`
	Total     int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (SupportTotal) TableName() string { return "support_totals" }
