/*
Package challenge implements Challenge contract, a reward-distribution ledger
deployed to a Neo N3 chain.

An owner creates a challenge with a fixed GAS reward and a limit on the
number of winners; any identity registers interest while the challenge is
active; the owner designates winners up to the limit; each designated winner
claims an equal share of the reward exactly once. The reward is paid from
the GAS held on the contract account, which anyone can replenish with a
regular NEP-17 transfer.

The share is computed at claim time as the reward divided by the current
number of winners, truncated. The remainder of a non-exact division is never
distributed, it stays on the contract account. Winner selection is a pure
owner decision: the selected identity does not have to be a participant.

# Contract notifications

ChallengeCreated notification. This notification is produced when a new
challenge is registered.

	ChallengeCreated:
	  - name: id
	    type: Integer
	  - name: owner
	    type: Hash160
	  - name: reward
	    type: Integer

ChallengeStateUpdated notification. This notification is produced when the
owner opens or closes the challenge for participation.

	ChallengeStateUpdated:
	  - name: id
	    type: Integer
	  - name: active
	    type: Boolean

Participated notification. This notification is produced when an identity
joins a challenge.

	Participated:
	  - name: id
	    type: Integer
	  - name: participant
	    type: Hash160

WinnerSelected notification. This notification is produced when the owner
designates a new winner.

	WinnerSelected:
	  - name: id
	    type: Integer
	  - name: winner
	    type: Hash160

RewardClaimed notification. This notification is produced when a winner
receives its share of the reward.

	RewardClaimed:
	  - name: id
	    type: Integer
	  - name: winner
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package challenge

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'challengeCounter' -> int
   the id to assign to the next challenge, starts at 0
 - 'x' + <id8> -> std.Serialize(Challenge)
   challenge records (Challenge is a structure defined in current package)
 - 'p' + <id8> + <interop.Hash160> -> 1
   participation records
 - 'w' + <id8> + <interop.Hash160> -> 1
   winner records
 - 'n' + <id8> -> int
   number of winners selected for the challenge
 - 'd' + <id8> + <interop.Hash160> -> 1
   claim markers of paid-out winners

<id8> is the challenge id in fixed 8-byte little-endian form, so prefix
searches scoped to one challenge never touch records of another one.

# Records
Challenge records, participation records, winner records and claim markers
are never deleted; a challenge is only ever toggled between active and
inactive states.
*/
