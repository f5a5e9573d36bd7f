package catalog

import "karigarstop/models"

var helpTopics = []models.HelpTopic{
	{
		ID:    "1",
		Title: "How to Book a Service",
		Content: "1. Browse through our available services\n" +
			"2. Click on \"Book Now\" for your chosen service\n" +
			"3. Select your preferred date and time\n" +
			"4. Enter your address details\n" +
			"5. Choose a payment method\n" +
			"6. Confirm your booking",
	},
	{
		ID:    "2",
		Title: "Payment Methods",
		Content: "We accept the following payment methods:\n" +
			"- UPI Payment\n" +
			"- Credit/Debit Cards\n" +
			"- Cash on Service\n\n" +
			"All online payments are secure and encrypted.",
	},
	{
		ID:    "3",
		Title: "Cancellation Policy",
		Content: "- Free cancellation up to 24 hours before the service\n" +
			"- Cancellation within 24 hours may incur a fee\n" +
			"- No-show will be charged full amount\n\n" +
			"Contact customer support for assistance with cancellations.",
	},
}

// ListHelpTopics returns the static help-center articles.
func (s *DefaultCatalogService) ListHelpTopics() []models.HelpTopic {
	out := make([]models.HelpTopic, len(helpTopics))
	copy(out, helpTopics)
	return out
}
