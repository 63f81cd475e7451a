// Package badbets keeps the betting record of one person: the bets placed on
// NBA and NFL teams, which ones still await a result, and how the settled ones
// went.
//
// The core functionalities include:
//   - Team Vocabulary: resolving team names typed by the user, and checking
//     that two teams can face each other.
//   - Bets: head to head games and season long over/under futures, with
//     American odds, ordered by the day their outcome becomes known.
//   - Ledger: outstanding and settled bets kept in two collections ordered by
//     settlement date, so that the next bet to settle is always at hand.
//   - Settlement: finding the bets whose settlement day has come and
//     recording their result.
//   - Data Persistence: encoding the ledger into a human-readable JSON document.
//
// This package serves as the foundational logic for the `bb` command-line tool.
package badbets
