package email

import "strconv"

// SendWelcomeEmail sends a welcome email to a newly created user.
func (c *Client) SendWelcomeEmail(to, name string) error {
	data := map[string]string{
		"UserName": name,
	}

	return c.SendEmail(
		to,
		"Welcome!",
		TemplateWelcome,
		data,
	)
}

// SendOrderConfirmation sends an order confirmation email to the user who
// placed the order.
func (c *Client) SendOrderConfirmation(to, name string, orderID int64) error {
	data := map[string]string{
		"UserName": name,
		"OrderID":  strconv.FormatInt(orderID, 10),
	}

	return c.SendEmail(
		to,
		"Your order has been placed",
		TemplateOrderConfirmation,
		data,
	)
}
