// Package teelog adapts zerolog to the inspection combinators: its
// functions build side-effect callbacks for IfSome/IfNone/ThenDo/ElseDo
// that emit structured records with the outcome's kind, code and message.
// The algebra itself stays log-free; logging happens only where a caller
// tees it in.
package teelog
