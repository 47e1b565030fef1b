// Package services provides domain services that implement business logic
// spanning multiple aggregates of the moving platform. Each service is
// stateless and pure: it works on domain objects handed to it by the
// application layer and never touches persistence itself.
//
// The package includes:
//   - PriceCalculator: itemized price and duration estimation for a move request
//   - DiscountValidator: ordered eligibility checks for discount codes
//   - OrderNumberGenerator: date-prefixed sequential order numbers
//   - DriverRatingAggregator: exact-decimal recomputation of a driver's rating
//
// Domain services hold the rules that do not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
