package handlers

// HandlerBundle groups every handler so route registration takes a single
// dependency.
type HandlerBundle struct {
	City    *CityHandler
	Tour    *TourHandler
	Review  *ReviewHandler
	Enquiry *EnquiryHandler
	Admin   *AdminHandler
}
