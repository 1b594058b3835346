//go:build unit || e2e

package builder

import "fleet-dispatch/internal/domain/auth"

func Customer(id string) auth.Principal {
	return auth.Principal{Subject: id, Role: auth.RoleCustomer}
}

func Operator(id string) auth.Principal {
	return auth.Principal{Subject: id, Role: auth.RoleOperator}
}

func Admin(id string) auth.Principal {
	return auth.Principal{Subject: id, Role: auth.RoleAdmin}
}
