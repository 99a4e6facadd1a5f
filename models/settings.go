package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultShippingRate is charged when no rate is configured for a region.
const DefaultShippingRate int64 = 200

type ShippingRate struct {
	Region string `json:"region" bson:"region"`
	Rate   int64  `json:"rate" bson:"rate"`
}

type EmailConfig struct {
	SMTPHost     string `json:"smtpHost,omitempty" bson:"smtp_host,omitempty"`
	SMTPPort     int    `json:"smtpPort,omitempty" bson:"smtp_port,omitempty"`
	SMTPUser     string `json:"smtpUser,omitempty" bson:"smtp_user,omitempty"`
	SMTPPassword string `json:"smtpPassword,omitempty" bson:"smtp_password,omitempty"`
	FromEmail    string `json:"fromEmail,omitempty" bson:"from_email,omitempty"`
	FromName     string `json:"fromName,omitempty" bson:"from_name,omitempty"`
}

type PaymentMethodToggle struct {
	Enabled bool `json:"enabled" bson:"enabled"`
}

type BankTransferConfig struct {
	Enabled       bool   `json:"enabled" bson:"enabled"`
	AccountName   string `json:"accountName,omitempty" bson:"account_name,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty" bson:"account_number,omitempty"`
	BankName      string `json:"bankName,omitempty" bson:"bank_name,omitempty"`
	IBAN          string `json:"iban,omitempty" bson:"iban,omitempty"`
}

type WalletConfig struct {
	Enabled       bool   `json:"enabled" bson:"enabled"`
	AccountNumber string `json:"accountNumber,omitempty" bson:"account_number,omitempty"`
	AccountTitle  string `json:"accountTitle,omitempty" bson:"account_title,omitempty"`
}

type PaymentMethods struct {
	CashOnDelivery PaymentMethodToggle `json:"cashOnDelivery" bson:"cash_on_delivery"`
	BankTransfer   BankTransferConfig  `json:"bankTransfer" bson:"bank_transfer"`
	Easypaisa      WalletConfig        `json:"easypaisa" bson:"easypaisa"`
	JazzCash       WalletConfig        `json:"jazzCash" bson:"jazz_cash"`
}

type BusinessInfo struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
}

// Settings is the single configuration document. Exactly one exists, stored
// under a fixed key and lazily created with defaults on first access.
type Settings struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Key            string             `json:"-" bson:"key"`
	EmailConfig    EmailConfig        `json:"emailConfig" bson:"email_config"`
	ShippingRates  []ShippingRate     `json:"shippingRates" bson:"shipping_rates"`
	PaymentMethods PaymentMethods     `json:"paymentMethods" bson:"payment_methods"`
	BusinessInfo   BusinessInfo       `json:"businessInfo" bson:"business_info"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updated_at"`
}

// DefaultSettings returns the seed document written on first access.
func DefaultSettings() *Settings {
	return &Settings{
		ShippingRates: []ShippingRate{
			{Region: "Islamabad", Rate: 150},
			{Region: "Rawalpindi", Rate: 150},
			{Region: "Lahore", Rate: 200},
			{Region: "Karachi", Rate: 250},
			{Region: "Other", Rate: 200},
		},
		PaymentMethods: PaymentMethods{
			CashOnDelivery: PaymentMethodToggle{Enabled: true},
			BankTransfer:   BankTransferConfig{Enabled: true},
			Easypaisa:      WalletConfig{Enabled: true},
			JazzCash:       WalletConfig{Enabled: true},
		},
		BusinessInfo: BusinessInfo{
			Name:     "Grazie Outfits",
			Email:    "grazieoutfits@gmail.com",
			Phone:    "+92 318-6831-156",
			WhatsApp: "+92 317-5837-684",
			Address:  "Islamabad, Pakistan",
		},
	}
}
