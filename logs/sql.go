package logs

const createTraceTable = `
CREATE TABLE IF NOT EXISTS traces (
  id integer primary key autoincrement,
  time datetime,
  field text not null,
  start text not null,
  keys text not null,
  final text,
  grounded boolean
)`

const createFrameTable = `
CREATE TABLE IF NOT EXISTS frames (
  trace_id integer not null,
  frame integer not null,
  keys text,
  x int,
  y int,
  r int,
  turn_prohibited int,
  arrow_prohibited int,
  quick_turn int,
  freefall int,
  num_grounded int,
  grounding boolean,
  grounded boolean,
  down_accepted boolean,
  PRIMARY KEY (trace_id, frame)
)`

const insertTraceStmt = `
INSERT INTO traces (time, field, start, keys, final, grounded)
VALUES (:time, :field, :start, :keys, :final, :grounded)
`

const insertFrameStmt = `
INSERT INTO frames (
  trace_id, frame, keys, x, y, r,
  turn_prohibited, arrow_prohibited, quick_turn, freefall,
  num_grounded, grounding, grounded, down_accepted
) VALUES (
  :trace_id, :frame, :keys, :x, :y, :r,
  :turn_prohibited, :arrow_prohibited, :quick_turn, :freefall,
  :num_grounded, :grounding, :grounded, :down_accepted
)`

const selectTraceStmt = `SELECT * FROM traces WHERE id = ?`

const selectFramesStmt = `SELECT * FROM frames WHERE trace_id = ? ORDER BY frame`
