package domain

const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
)
