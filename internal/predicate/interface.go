package predicate

import "regexp"

// interfacePattern compiles the "long-form or canonical short-form,
// followed by a numeric path N(/N)*(.N)?" shape shared by each of the
// interface-name predicates.
func interfacePattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(?:` + prefix + `) *[0-9]+(/[0-9]+)*([.][0-9]+)?\b`)
}

var (
	loopbackPattern               = interfacePattern(`lo(?:opback)?`)
	bundleEthernetPattern         = interfacePattern(`bundle-ether|be`)
	portChannelPattern            = interfacePattern(`po(?:rt-channel)?`)
	hundredGigabitEthernetPattern = interfacePattern(`hu(?:ndredgige?)?`)
	tenGigabitEthernetPattern     = interfacePattern(`te(?:ngige?)?`)
	gigabitEthernetPattern        = interfacePattern(`gi(?:gabitethernet)?`)
	fastEthernetPattern           = interfacePattern(`fa(?:stethernet)?`)
)

func isLoopbackInterface(value any) (bool, error) {
	return loopbackPattern.MatchString(stringify(value)), nil
}

func isBundleEthernet(value any) (bool, error) {
	return bundleEthernetPattern.MatchString(stringify(value)), nil
}

func isPortChannel(value any) (bool, error) {
	return portChannelPattern.MatchString(stringify(value)), nil
}

func isHundredGigabitEthernet(value any) (bool, error) {
	return hundredGigabitEthernetPattern.MatchString(stringify(value)), nil
}

func isTenGigabitEthernet(value any) (bool, error) {
	return tenGigabitEthernetPattern.MatchString(stringify(value)), nil
}

func isGigabitEthernet(value any) (bool, error) {
	return gigabitEthernetPattern.MatchString(stringify(value)), nil
}

func isFastEthernet(value any) (bool, error) {
	return fastEthernetPattern.MatchString(stringify(value)), nil
}
