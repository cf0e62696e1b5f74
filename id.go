// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package join

import "code.hybscloud.com/atomix"

// ChannelID is a process-wide unique channel identity,
// assigned at channel creation and immutable thereafter.
type ChannelID uint32

// JunctionID identifies the junction a channel belongs to.
// A pattern may only combine channels sharing one JunctionID.
type JunctionID uint32

// channelCounter and junctionCounter are the global monotonic
// counters backing identity allocation.
var (
	channelCounter  atomix.Uint32
	junctionCounter atomix.Uint32
)

// nextChannelID returns the next monotonically increasing channel identity.
func nextChannelID() ChannelID {
	return ChannelID(channelCounter.Add(1))
}

// nextJunctionID returns the next monotonically increasing junction identity.
func nextJunctionID() JunctionID {
	return JunctionID(junctionCounter.Add(1))
}
