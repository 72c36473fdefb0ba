package usecase

// AllocationPageSize exposes the allocation read page size to tests.
const AllocationPageSize = allocationPageSize
