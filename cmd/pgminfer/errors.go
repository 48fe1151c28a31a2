package main

import "fmt"

func errUnknownKind(s string) error {
	return fmt.Errorf("pgminfer: unknown factor kind %q (want enumerated|pairwise|or|and)", s)
}
