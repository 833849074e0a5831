// Package participant models the two actor roles of the marketplace: customers
// who post shipment orders and carriers who bid on them. A participant carries
// a fixed capability set of truck types; eligibility to bid on an order is
// decided by matching the order's truck type against those capabilities.
package participant
