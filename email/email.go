package email

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/kaloyan-drinchev/sink-shop/config"
	gomail "gopkg.in/gomail.v2"
)

// OrderEmailData is everything the order emails need, captured at
// checkout time.
type OrderEmailData struct {
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Address       string
	City          string
	PostalCode    string
	Country       string
	Items         []OrderEmailItem
	TotalEur      float64
	TotalBgn      float64
	OrderDate     time.Time
}

type OrderEmailItem struct {
	Title        string
	SerialNumber string
	ProductID    string
	Quantity     int
	PriceEur     float64
}

// Service sends the shop-owner notification and the customer
// confirmation. With no EMAIL_USER/EMAIL_PASS configured it stays
// disabled and every send is a logged no-op — email must never block an
// order.
type Service struct {
	dialer      *gomail.Dialer
	from        string
	notifyTo    string
	frontendURL string
}

func New(cfg config.Config) *Service {
	if cfg.EmailUser == "" || cfg.EmailPass == "" {
		log.Println("Email service disabled (EMAIL_USER/EMAIL_PASS not set)")
		return nil
	}
	return &Service{
		dialer:      gomail.NewDialer("smtp.gmail.com", 587, cfg.EmailUser, cfg.EmailPass),
		from:        cfg.EmailUser,
		notifyTo:    cfg.OrderNotifyEmail,
		frontendURL: cfg.FrontendURL,
	}
}

// SendOrderNotification emails the shop owner about a new order.
func (s *Service) SendOrderNotification(data OrderEmailData) error {
	if s == nil {
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.notifyTo)
	m.SetHeader("Subject", "New Order - "+data.OrderNumber)
	m.SetBody("text/plain", s.formatNotification(data))
	return s.dialer.DialAndSend(m)
}

// SendCustomerConfirmation emails the customer their order summary.
func (s *Service) SendCustomerConfirmation(data OrderEmailData) error {
	if s == nil {
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", data.CustomerEmail)
	m.SetHeader("Subject", "Order Confirmation - "+data.OrderNumber)
	m.SetBody("text/plain", s.formatConfirmation(data))
	return s.dialer.DialAndSend(m)
}

func (s *Service) formatItems(data OrderEmailData) string {
	lines := make([]string, 0, len(data.Items))
	for _, item := range data.Items {
		lines = append(lines, fmt.Sprintf(
			"• %s (Serial: %s)\n  Link: %s/sink/%s\n  Quantity: %d - Price: %.2f EUR",
			item.Title, item.SerialNumber, s.frontendURL, item.ProductID, item.Quantity, item.PriceEur))
	}
	return strings.Join(lines, "\n\n")
}

func (s *Service) formatNotification(data OrderEmailData) string {
	return fmt.Sprintf(`New Order Received - %s

Customer Information:
- Name: %s
- Email: %s
- Phone: %s

Shipping Address:
%s
%s, %s
%s

Order Items:
%s

Order Total:
€%.2f EUR / %.2f BGN

Order Date: %s
Order Number: %s

---
Sink Shop Order System
`,
		data.OrderNumber,
		data.CustomerName, data.CustomerEmail, data.CustomerPhone,
		data.Address, data.City, data.PostalCode, data.Country,
		s.formatItems(data),
		data.TotalEur, data.TotalBgn,
		data.OrderDate.Format("02 Jan 2006 15:04"), data.OrderNumber)
}

func (s *Service) formatConfirmation(data OrderEmailData) string {
	return fmt.Sprintf(`Dear %s,

Thank you for your order! Here are the details:

Order Number: %s
Order Date: %s

Items Ordered:
%s

Total: €%.2f EUR / %.2f BGN

Shipping Address:
%s
%s, %s
%s

We will process your order and contact you with shipping details soon.

Thank you for choosing Sink Shop!

Best regards,
Sink Shop Team
`,
		data.CustomerName,
		data.OrderNumber, data.OrderDate.Format("02 Jan 2006 15:04"),
		s.formatItems(data),
		data.TotalEur, data.TotalBgn,
		data.Address, data.City, data.PostalCode, data.Country)
}
