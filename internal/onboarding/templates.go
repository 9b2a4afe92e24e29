package onboarding

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownTemplate is returned when no industry template matches the key.
var ErrUnknownTemplate = errors.New("unknown industry template")

// industryTemplates pre-fills the additional-details field with prompts for
// common verticals. Placeholders use {{...}} and are meant to be replaced
// by the business owner before provisioning.
var industryTemplates = map[string]string{
	"salon": `Hours: We are open {{DAYS AND HOURS}}.
Services: We offer {{LIST OF SERVICES}} starting at {{PRICES}}.
Products: We use and sell {{PRODUCT BRANDS}}.
Cancellation Policy: Please provide {{X HOURS}} notice for cancellations to avoid a {{FEE DETAILS}}.
Gift Cards: We offer {{TYPES OF GIFT CARDS}} in {{DENOMINATIONS}}.
Special Services: {{SPECIAL OFFERINGS like bridal packages, group services, etc.}}
Membership/Loyalty: {{DETAILS OF ANY MEMBERSHIP OR LOYALTY PROGRAMS}}.`,
	"restaurant": `Hours: We serve {{MEALS}} from {{DAYS AND HOURS}}.
Reservations: Parties of {{SIZE}} or more should book {{X DAYS}} ahead.
Menu: Our specialties include {{SIGNATURE DISHES}}.
Dietary Options: We offer {{VEGETARIAN/VEGAN/GLUTEN-FREE OPTIONS}}.
Private Events: {{PRIVATE DINING OR CATERING DETAILS}}.
Parking: {{PARKING INSTRUCTIONS}}.`,
	"medical": `Hours: Our practice is open {{DAYS AND HOURS}}.
Appointments: New patients should arrive {{X MINUTES}} early with {{REQUIRED DOCUMENTS}}.
Insurance: We accept {{INSURANCE PLANS}}.
Prescriptions: Refill requests take {{X BUSINESS DAYS}}.
Emergencies: For medical emergencies call {{EMERGENCY NUMBER}} immediately.
Cancellation Policy: Please give {{X HOURS}} notice to avoid a {{FEE DETAILS}}.`,
	"home_services": `Hours: We take service calls {{DAYS AND HOURS}}.
Service Area: We cover {{AREAS SERVED}}.
Services: We handle {{LIST OF SERVICES}}.
Estimates: {{FREE OR PAID ESTIMATE POLICY}}.
Emergency Work: After-hours emergency rates are {{RATE DETAILS}}.
Warranty: Our work is covered by {{WARRANTY TERMS}}.`,
}

// TemplateNames lists the available template keys in stable order.
func TemplateNames() []string {
	names := make([]string, 0, len(industryTemplates))
	for name := range industryTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTemplate fills the additional-details field from a named industry
// template, replacing whatever was there.
func (w *Wizard) ApplyTemplate(name string) error {
	template, ok := industryTemplates[name]
	if !ok {
		return errors.Wrapf(ErrUnknownTemplate, "%q", name)
	}
	w.form.AdditionalDetails = template
	return nil
}
