// Package mock holds gomock doubles for the use-case ports. Regenerate with `go generate ./tests/mock`.
package mock

//go:generate mockgen -source=../../internal/usecase/commands/auth.go -destination=commands/auth.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/commands/user.go -destination=commands/user.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/commands/equipment.go -destination=commands/equipment.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/commands/reservation.go -destination=commands/reservation.go -package=commandsmock
//go:generate mockgen -source=../../internal/usecase/queries/user.go -destination=queries/user.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/queries/equipment.go -destination=queries/equipment.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/queries/reservation.go -destination=queries/reservation.go -package=queriesmock
//go:generate mockgen -source=../../internal/usecase/queries/availability.go -destination=queries/availability.go -package=queriesmock
