// Package discount contains the discount-code aggregate and the value objects
// describing a validated, applicable discount.
//
// A Code is eligibility state: time window, usage caps, minimum order amount.
// Eligibility checking itself lives in the DiscountValidator domain service;
// this package only enforces the invariants a code carries on its own, most
// importantly that usage count never exceeds the usage limit once set.
package discount
