// Package commands defines the quickchat CLI and wires dependencies for subcommands.
//
// Commands
//
//   - send <sender> <recipient> <message>    Create and send a message
//   - store <sender> <recipient> <message>   Create and keep a message without sending
//   - disregard <id>                         Drop a message and free its id
//   - delete <hash>                          Hard-delete the first sent message with a content hash
//   - get <id>                               Show the message holding an id
//   - list                                   Show the stored working set
//   - search <recipient>                     Sent messages to a recipient
//   - longest                                The longest sent message
//   - pairs                                  Distinct sender/recipient pairs
//   - report                                 Full text report
//   - shell                                  Interactive session over one registry
//
// # Implementation
//
// The root command resolves configuration from flags, a .env file and
// QUICKCHAT_* variables, then builds the registry and restores the stored
// working set before any subcommand runs. Sent and disregarded history live
// only in memory, so queries over them are most useful inside shell.
package commands
