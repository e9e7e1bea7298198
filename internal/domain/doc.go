// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/task, domain/item,
// domain/rollback). This root package holds sentinel errors and validation
// types shared by every layer.
package domain
