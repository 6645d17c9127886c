package transmission

import "fmt"

var (
	subjects = [...]string{
		"Long-range scanner",
		"Relay drone",
		"Pirate beacon",
		"Outer rim array",
		"Subspace receiver",
		"Navigation core",
	}
	actions = [...]string{
		"locked onto",
		"decoded",
		"flagged",
		"stabilized",
		"rerouted",
		"intercepted",
	}
	objects = [...]string{
		"a drifting colony ping",
		"an encrypted trader channel",
		"a rogue moon telemetry burst",
		"a hidden wormhole marker",
		"an ion storm distress packet",
		"a ghost-fleet handshake",
	}
)

// Synthesize deterministically composes a message from the generation time and
// the number of entries already in the log.
func Synthesize(now int64, entryCount int) string {
	s := pick(now, 7, entryCount, 3, len(subjects))
	a := pick(now, 11, entryCount, 5, len(actions))
	o := pick(now, 13, entryCount, 7, len(objects))
	return fmt.Sprintf("%s %s %s.", subjects[s], actions[a], objects[o])
}

// pick returns (now/stride + count*weight) mod size, computed unsigned.
func pick(now int64, stride uint64, count int, weight uint64, size int) int {
	return int((uint64(now)/stride + uint64(count)*weight) % uint64(size))
}
