// Package writers owns how results reach stdout.
//
// Design:
//   • One value per line, '\n' between lines and none after the last, so a
//     consumer splitting on '\n' never sees an empty trailing field.
//   • Broken pipes (a consumer such as `head` exiting early) are not errors.
package writers
