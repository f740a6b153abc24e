package encoder

import "fmt"

// recordPrefixLength is the common prefix of every physical record: the
// record type letter, the 9-digit sequence number, the 10-character
// originator ID and the 4-digit file creation number.
const recordPrefixLength = 1 + 9 + 10 + 4

// SegmentsPerRecord is the maximum number of payment segments packed into
// one physical detail record.
const SegmentsPerRecord = 6

// Profile captures the field widths that differ between destination-bank
// layout conventions. Every physical record in a file shares the
// profile's record length; new bank variants are additive entries here
// rather than forks of the formatting logic.
type Profile struct {
	Name string

	// InstitutionWidth is the zero-padded width of the bank institution
	// number field within a segment block.
	InstitutionWidth int

	// SegmentLength is the fixed width of one segment block.
	SegmentLength int

	// RecordLength is the fixed width of every physical record.
	RecordLength int
}

var (
	// ProfileStandard is the reference convention: the institution number
	// is zero-padded to 4 digits, giving 240-character segment blocks and
	// 1464-character records.
	ProfileStandard = Profile{
		Name:             "standard",
		InstitutionWidth: 4,
		SegmentLength:    240,
		RecordLength:     recordPrefixLength + SegmentsPerRecord*240,
	}

	// ProfileTD is the TD variant: the institution number occupies 3
	// digits and detail segments carry item trace numbers. Records are
	// 1458 characters.
	ProfileTD = Profile{
		Name:             "td",
		InstitutionWidth: 3,
		SegmentLength:    239,
		RecordLength:     recordPrefixLength + SegmentsPerRecord*239,
	}
)

// Profiles lists the shipped layout profiles.
var Profiles = []Profile{ProfileStandard, ProfileTD}

// ProfileByName resolves a layout profile by its name.
func ProfileByName(name string) (Profile, error) {
	for _, p := range Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("unknown layout profile '%s'", name)
}
