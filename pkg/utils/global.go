package utils

//ActionForehand is the label the action recognition model emits for a forehand stroke
const ActionForehand = "Forehand"

//ActionBackhand is the label the action recognition model emits for a backhand stroke
const ActionBackhand = "Backhand"

//ActionServe is the label the action recognition model emits for a serve
const ActionServe = "Serve"

//ActionVolley is the label the action recognition model emits for a volley
const ActionVolley = "Volley"

//ActionNone is the label for frames where the player performs no recognized stroke
const ActionNone = "No Action"

//ActionUnknown is the fallback label recorded when cropping or classification fails.
//The frame is still recorded so frame-count based statistics stay intact
const ActionUnknown = "Unknown"

//ActionLabels is the full label set the classifier may emit
var ActionLabels = []string{ActionForehand, ActionBackhand, ActionServe, ActionVolley, ActionNone}

//NoPlayerID is the reserved bucket for frames where the tracker found no players at all
const NoPlayerID = "no_player"

//BallClass is the enum the tracker uses for an object detected as the ball
const BallClass = 0

//DontPlotFlag marks a tracker object line that should be ignored
const DontPlotFlag = -1

//DefaultDistanceThreshold is the ball possession distance cutoff, in detector pixel units
const DefaultDistanceThreshold = 100.0

//DefaultFPS is the assumed capture rate when the footage does not report one
const DefaultFPS = 30.0

//DefaultFrameHeight is the assumed frame height in pixels when the footage does not report one
const DefaultFrameHeight = 720.0

//DefaultPrimaryPlayers are the tracker IDs included in the two-player report.
//Other tracked IDs are accumulated but excluded from the final report
var DefaultPrimaryPlayers = []string{"1", "2"}
