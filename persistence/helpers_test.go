package persistence_test

import "github.com/fundwit/go-commons/types"

func typesID(i int) types.ID {
	return types.ID(i)
}
