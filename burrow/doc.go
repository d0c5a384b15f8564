// Package burrow models the arrangement of typed tokens in a burrow: a
// straight corridor with a fixed set of rooms hanging below it.
//
// What:
//
//   - Geometry fixes the shape: corridor length, one entrance index per room,
//     uniform room depth and the per-step cost of every token type.
//   - Layout is one complete configuration of tokens. It is a comparable value:
//     == is structural equality and a Layout can key a Go map directly.
//   - Parse reads the usual ASCII diagram; Layout.String renders it back.
//
// Diagram:
//
//	#############
//	#...........#   corridor, index 0 at the left wall
//	###B#C#B#D###   room slot 0 ("top"), nearest the corridor
//	  #A#D#C#A#     room slot Depth-1 ("bottom")
//	  #########
//
// Room i accepts only tokens of type i (A for room 0, B for room 1, ...).
// A token never rests on an entrance, the corridor cell right above a room.
//
// Invariants (checked by NewLayout, preserved by every legal move):
//
//   - Conservation: each token type occurs exactly Depth times.
//   - Gravity: the non-empty slots of a room form a contiguous run ending at the bottom.
//   - Entrances are always empty.
//
// Errors:
//
//   - ErrGeometry: invalid corridor/room/depth/cost configuration.
//   - ErrShape: corridor or room slices do not match the Geometry.
//   - ErrUnknownToken: a token type with no matching room.
//   - ErrConservation: a token type does not occur exactly Depth times.
//   - ErrFloatingToken: a room has an empty slot below an occupied one.
//   - ErrBlockedEntrance: a token rests on an entrance.
//   - ErrParse: malformed diagram text.
package burrow
