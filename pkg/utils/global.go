package utils

//BallClass is the enum represents an object detected as a ball
const BallClass = 0

//HoopClass is the enum represents an object detected as a hoop
const HoopClass = 1

//NoPlayer marks a frame where no player holds the ball
const NoPlayer = -1

//NoTeam marks a player the team assigner could not classify
const NoTeam = -1

//TeamOneID is the identifier of the first team
const TeamOneID = 1

//TeamTwoID is the identifier of the second team
const TeamTwoID = 2

//CourtKeypointsNum is the number of court keypoints the detector reports per frame
const CourtKeypointsNum = 18

//DefaultBallDriftPerFrame is the allowed ball top-left drift in pixels per frame of gap
const DefaultBallDriftPerFrame = 25.0

//DefaultProportionErrorMargin is the relative error above which a court keypoint is invalidated
const DefaultProportionErrorMargin = 0.8

//DefaultDistanceCorrection is the empirical factor applied to projected metric distances
const DefaultDistanceCorrection = 0.4

//DefaultSpeedWindowSize is the number of distance steps required for a speed estimate
const DefaultSpeedWindowSize = 5

//DefaultUpwardThreshold is the upward ball displacement in pixels that triggers a shot
const DefaultUpwardThreshold = 40.0

//DefaultShotCooldownFrames is the minimum gap between two shot events
const DefaultShotCooldownFrames = 30

//DefaultScoringZoneRatio is the fraction of frame height (from the top) counted as the scoring zone
const DefaultScoringZoneRatio = 0.25

//DefaultLookbackFrames is how far back the shot trigger compares the ball's height
const DefaultLookbackFrames = 8

//DefaultResolutionWindow is how many frames after a shot we wait for a made/missed resolution
const DefaultResolutionWindow = 30

//DefaultPossessionLookback is how many recent frames are searched for the last possessor
const DefaultPossessionLookback = 15
