// Package commands defines the resume CLI. Every command works on the same
// saved state as the editor server.
//
// Commands
//
//   - show              Print the resume as JSON
//   - import <file>     Replace the resume with a JSON snapshot
//   - reset             Clear every section
//   - check             Report required fields that are still blank
//   - add <section>     Append an empty entry and print its id
//   - set               Update one field of an entry
//   - remove            Delete an entry
//   - personal          Update a personal info field
//   - picture <file>    Embed a profile picture
//   - skill <name>      Add a skill with an optional level
//   - level <id> <n>    Change a skill level
//   - templates         List the available templates
//   - template [id]     Show or change the selected template
//   - render            Write the rendered HTML
//   - export            Print the resume to PDF
//
// The root command loads configuration and opens the store before any
// subcommand runs, and closes it afterwards.
package commands
