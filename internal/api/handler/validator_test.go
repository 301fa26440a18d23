package handler

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func validationMessage(t *testing.T, err error) string {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %T: %v", err, err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
	msg, ok := he.Message.(string)
	if !ok {
		t.Fatalf("expected string message, got %T", he.Message)
	}
	return msg
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&signupRequest{})
	msg := validationMessage(t, err)

	for _, field := range []string{"first_name", "last_name", "email", "password", "address"} {
		if !strings.Contains(msg, field+": is required") {
			t.Fatalf("expected %q in message, got %q", field+": is required", msg)
		}
	}
	// The optional phone number must not be flagged when absent.
	if strings.Contains(msg, "phonenumber") {
		t.Fatalf("phonenumber should not be flagged: %q", msg)
	}
}

// A field that fails its first rule reports only that rule; evaluation does
// not continue into min/max.
func TestValidator_StopsAtFirstRulePerField(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&signupRequest{
		FirstName: "A",
		LastName:  "Smith",
		Email:     "not-an-email",
		Password:  "secret",
		Address:   "12 Main Street",
	})
	msg := validationMessage(t, err)

	if !strings.Contains(msg, "first_name: must be at least 2 characters") {
		t.Fatalf("expected min violation for first_name, got %q", msg)
	}
	if !strings.Contains(msg, "email: must be a valid email") {
		t.Fatalf("expected email violation, got %q", msg)
	}
	if strings.Count(msg, "first_name") != 1 {
		t.Fatalf("first_name reported more than once: %q", msg)
	}
}

func TestValidator_AddressCharset(t *testing.T) {
	v := NewValidator()

	ok := &signupRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Password:  "secret",
		Address:   "Flat 4/B, 12 O'Connell St. #2",
	}
	if err := v.Validate(ok); err != nil {
		t.Fatalf("valid address rejected: %v", err)
	}

	bad := *ok
	bad.Address = "12 Main St <script>"
	err := v.Validate(&bad)
	msg := validationMessage(t, err)
	if !strings.Contains(msg, "address: contains invalid characters") {
		t.Fatalf("expected address violation, got %q", msg)
	}
}

func TestValidator_CouponRules(t *testing.T) {
	v := NewValidator()

	valid := &createCouponRequest{
		Code:               "SUMMER10",
		DiscountPercentage: 10,
		StartDate:          "2026-06-01",
		EndDate:            "2026-06-30",
	}
	if err := v.Validate(valid); err != nil {
		t.Fatalf("valid coupon rejected: %v", err)
	}

	badDate := *valid
	badDate.StartDate = "01-06-2026"
	msg := validationMessage(t, v.Validate(&badDate))
	if !strings.Contains(msg, "start_date: must be a date in YYYY-MM-DD format") {
		t.Fatalf("expected date violation, got %q", msg)
	}

	badDiscount := *valid
	badDiscount.DiscountPercentage = 150
	msg = validationMessage(t, v.Validate(&badDiscount))
	if !strings.Contains(msg, "discount_percentage: must be at most 100") {
		t.Fatalf("expected discount violation, got %q", msg)
	}
}

func TestValidator_TagColor(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&createTagRequest{Title: "vegan", ColorHex: "#00ff00"}); err != nil {
		t.Fatalf("valid tag rejected: %v", err)
	}

	msg := validationMessage(t, v.Validate(&createTagRequest{Title: "vegan", ColorHex: "green"}))
	if !strings.Contains(msg, "color_hex: must be a hex color") {
		t.Fatalf("expected hexcolor violation, got %q", msg)
	}
}

func TestValidator_OrderRules(t *testing.T) {
	v := NewValidator()

	valid := &createOrderRequest{
		OrderType:       "delivery",
		DeliveryAddress: "12 Main Street",
		Price:           25.50,
		Items:           []orderItemRequest{{ProductID: 1, Quantity: 2}},
	}
	if err := v.Validate(valid); err != nil {
		t.Fatalf("valid order rejected: %v", err)
	}

	// Pickup orders need no delivery address.
	pickup := &createOrderRequest{
		OrderType: "pickup",
		Price:     25.50,
		Items:     []orderItemRequest{{ProductID: 1, Quantity: 2}},
	}
	if err := v.Validate(pickup); err != nil {
		t.Fatalf("valid pickup order rejected: %v", err)
	}

	// Delivery orders do.
	noAddress := *valid
	noAddress.DeliveryAddress = ""
	msg := validationMessage(t, v.Validate(&noAddress))
	if !strings.Contains(msg, "delivery_address") {
		t.Fatalf("expected delivery_address violation, got %q", msg)
	}

	badType := *valid
	badType.OrderType = "teleport"
	msg = validationMessage(t, v.Validate(&badType))
	if !strings.Contains(msg, "order_type: must be one of") {
		t.Fatalf("expected order_type violation, got %q", msg)
	}

	empty := *valid
	empty.Items = nil
	if err := v.Validate(&empty); err == nil {
		t.Fatalf("order without items accepted")
	}
}
