package catalog

import "strings"

const whatsAppBaseURL = "https://wa.me/"

// WhatsAppLink builds the outbound contact deep link. The contact string is not validated.
func WhatsAppLink(contact string) string {
	return whatsAppBaseURL + strings.TrimSpace(contact)
}

// DriverPlaceholderPhoto is the deterministic photo used when a driver is created without one.
func DriverPlaceholderPhoto(id string) string {
	return "https://picsum.photos/seed/driver-" + id + "/400/400"
}

// PartnerPlaceholderLogo is the deterministic logo used when a partner is created without one.
func PartnerPlaceholderLogo(id string) string {
	return "https://picsum.photos/seed/partner-" + id + "/200/200"
}
