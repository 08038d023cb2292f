package domain

// AllModels lists every model for automigration, in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&Claim{},
		&Evidence{},
		&ClaimEvidenceLink{},
		&WorkspaceSettings{},
		&AgentAlert{},
	}
}
