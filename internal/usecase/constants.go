package usecase

// allocationPageSize is the page size for reading persisted allocation
// records. The pending-balance read pages until the result set is
// exhausted so no record is silently dropped from the applied totals.
const allocationPageSize = 1000
