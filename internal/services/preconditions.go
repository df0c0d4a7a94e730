package services

// Precondition hooks consulted before each status transition writes.
// They all accept today: prior-status checks, route compatibility and
// ownership checks slot in here without touching the transition writes
// themselves.

func canBindMatch(transactionID, matchID, actingUserID string) error {
	return nil
}

func canRequestApproval(transactionID, matchID string) error {
	return nil
}

func canApprove(transactionID, moderatorID string) error {
	return nil
}
