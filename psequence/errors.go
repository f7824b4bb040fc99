package psequence

import "github.com/gaissmai/pcollections/errkind"

func invalidArgument(msg string) error {
	return errkind.New(errkind.InvalidArgument, "%s", msg)
}
