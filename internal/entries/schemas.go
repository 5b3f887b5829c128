package entries

import "github.com/ObserveRTC/report-connector/internal/warehouse"

// Column names shared across entry tables.
const (
	fieldServiceUUID        = "serviceUUID"
	fieldServiceName        = "serviceName"
	fieldMediaUnitID        = "mediaUnitId"
	fieldCallUUID           = "callUUID"
	fieldCallName           = "callName"
	fieldUserID             = "userId"
	fieldBrowserID          = "browserId"
	fieldPeerConnectionUUID = "peerConnectionUUID"
	fieldTimestamp          = "timestamp"
	fieldTimeZone           = "timeZone"
	fieldMarker             = "marker"
)

func str(name string) warehouse.Field {
	return warehouse.Field{Name: name, Type: warehouse.TypeString}
}

func reqStr(name string) warehouse.Field {
	return warehouse.Field{Name: name, Type: warehouse.TypeString, Required: true}
}

func integer(name string) warehouse.Field {
	return warehouse.Field{Name: name, Type: warehouse.TypeInteger}
}

func reqInt(name string) warehouse.Field {
	return warehouse.Field{Name: name, Type: warehouse.TypeInteger, Required: true}
}

func float(name string) warehouse.Field {
	return warehouse.Field{Name: name, Type: warehouse.TypeFloat}
}

func boolean(name string) warehouse.Field {
	return warehouse.Field{Name: name, Type: warehouse.TypeBoolean}
}

// schemas holds the ordered column list of every entry table. The lists are
// the connector's source of truth for table creation; field order matters.
var schemas = map[Type]warehouse.Schema{
	InitiatedCall: {
		reqStr(fieldServiceUUID),
		str(fieldServiceName),
		reqStr(fieldCallUUID),
		str(fieldCallName),
		reqInt(fieldTimestamp),
		str(fieldMarker),
	},
	FinishedCall: {
		reqStr(fieldServiceUUID),
		str(fieldServiceName),
		reqStr(fieldCallUUID),
		str(fieldCallName),
		reqInt(fieldTimestamp),
		str(fieldMarker),
	},
	JoinedPeerConnection: {
		reqStr(fieldServiceUUID),
		str(fieldServiceName),
		str(fieldMediaUnitID),
		reqStr(fieldCallUUID),
		str(fieldCallName),
		str(fieldUserID),
		reqStr(fieldBrowserID),
		reqStr(fieldPeerConnectionUUID),
		reqInt(fieldTimestamp),
		reqStr(fieldTimeZone),
		str(fieldMarker),
	},
	DetachedPeerConnection: {
		reqStr(fieldServiceUUID),
		str(fieldServiceName),
		str(fieldMediaUnitID),
		reqStr(fieldCallUUID),
		str(fieldCallName),
		str(fieldUserID),
		reqStr(fieldBrowserID),
		reqStr(fieldPeerConnectionUUID),
		reqInt(fieldTimestamp),
		reqStr(fieldTimeZone),
		str(fieldMarker),
	},
	RemoteInboundRTP: {
		reqStr(fieldServiceUUID),
		str(fieldServiceName),
		str(fieldMediaUnitID),
		str(fieldCallName),
		str(fieldUserID),
		reqStr(fieldBrowserID),
		reqStr(fieldPeerConnectionUUID),
		reqInt(fieldTimestamp),
		reqInt("ssrc"),
		integer("packetsLost"),
		float("rttInMs"),
		float("jitter"),
		str("codec"),
		str("mediaType"),
		reqStr("transportId"),
		str(fieldMarker),
	},
	OutboundRTP: {
		reqStr(fieldServiceUUID),
		str(fieldServiceName),
		str(fieldMediaUnitID),
		str(fieldCallName),
		str(fieldUserID),
		reqStr(fieldBrowserID),
		reqStr(fieldPeerConnectionUUID),
		reqInt(fieldTimestamp),
		reqInt("ssrc"),
		integer("bytesSent"),
		str("encoderImplementation"),
		integer("firCount"),
		integer("framesEncoded"),
		integer("nackCount"),
		integer("headerBytesSent"),
		integer("keyFramesEncoded"),
		str("mediaType"),
		integer("packetsSent"),
		integer("pliCount"),
		float("qpSum"),
		str("qualityLimitationReason"),
		integer("qualityLimitationResolutionChanges"),
		integer("retransmittedBytesSent"),
		integer("retransmittedPacketsSent"),
		float("totalEncodeTime"),
		float("totalPacketSendDelay"),
		integer("totalEncodedBytesTarget"),
		str(fieldMarker),
	},
	InboundRTP: {
		reqStr(fieldServiceUUID),
		str(fieldServiceName),
		str(fieldMediaUnitID),
		str(fieldCallName),
		str(fieldUserID),
		reqStr(fieldBrowserID),
		reqStr(fieldPeerConnectionUUID),
		reqInt(fieldTimestamp),
		reqInt("ssrc"),
		integer("bytesReceived"),
		str("decoderImplementation"),
		integer("firCount"),
		integer("framesDecoded"),
		integer("nackCount"),
		integer("headerBytesReceived"),
		integer("keyFramesDecoded"),
		str("mediaType"),
		integer("packetsReceived"),
		integer("pliCount"),
		float("qpSum"),
		float("jitter"),
		float("totalDecodeTime"),
		float("totalInterFrameDelay"),
		float("totalSquaredInterFrameDelay"),
		integer("packetsLost"),
		float("estimatedPlayoutTimestamp"),
		integer("fecPacketsDiscarded"),
		float("lastPacketReceivedTimestamp"),
		integer("fecPacketsReceived"),
		str(fieldMarker),
	},
	ICECandidatePair: {
		reqStr(fieldServiceUUID),
		str(fieldServiceName),
		str(fieldMediaUnitID),
		str(fieldCallName),
		str(fieldUserID),
		reqStr(fieldBrowserID),
		reqStr(fieldPeerConnectionUUID),
		reqInt(fieldTimestamp),
		reqStr("candidatePairId"),
		reqStr("localCandidateId"),
		reqStr("remoteCandidateId"),
		boolean("writable"),
		float("totalRoundTripTime"),
		str("state"),
		boolean("nominated"),
		integer("availableOutgoingBitrate"),
		integer("bytesReceived"),
		integer("bytesSent"),
		integer("consentRequestsSent"),
		float("currentRoundTripTime"),
		integer("priority"),
		integer("requestsReceived"),
		integer("requestsSent"),
		integer("responsesReceived"),
		integer("responsesSent"),
		str(fieldMarker),
	},
	ICELocalCandidate: {
		reqStr(fieldServiceUUID),
		str(fieldServiceName),
		str(fieldMediaUnitID),
		str(fieldCallName),
		str(fieldUserID),
		reqStr(fieldBrowserID),
		reqStr(fieldPeerConnectionUUID),
		reqInt(fieldTimestamp),
		reqStr("candidateId"),
		boolean("deleted"),
		str("candidateType"),
		integer("port"),
		str("ipLSH"),
		integer("priority"),
		str("networkType"),
		str("protocol"),
		str(fieldMarker),
	},
	ICERemoteCandidate: {
		reqStr(fieldServiceUUID),
		str(fieldServiceName),
		str(fieldMediaUnitID),
		str(fieldCallName),
		str(fieldUserID),
		reqStr(fieldBrowserID),
		reqStr(fieldPeerConnectionUUID),
		reqInt(fieldTimestamp),
		reqStr("candidateId"),
		str("candidateType"),
		boolean("deleted"),
		integer("port"),
		str("ipLSH"),
		integer("priority"),
		str("protocol"),
		str(fieldMarker),
	},
	MediaSource: {
		reqStr(fieldServiceUUID),
		str(fieldServiceName),
		str(fieldMediaUnitID),
		str(fieldCallName),
		str(fieldUserID),
		reqStr(fieldBrowserID),
		reqStr(fieldPeerConnectionUUID),
		reqInt(fieldTimestamp),
		str("mediaSourceId"),
		float("framesPerSecond"),
		integer("height"),
		integer("width"),
		float("audioLevel"),
		str("mediaType"),
		float("totalAudioEnergy"),
		float("totalSamplesDuration"),
		str(fieldMarker),
	},
	Track: {
		reqStr(fieldServiceUUID),
		str(fieldServiceName),
		str(fieldMediaUnitID),
		str(fieldCallName),
		str(fieldUserID),
		reqStr(fieldBrowserID),
		reqStr(fieldPeerConnectionUUID),
		reqInt(fieldTimestamp),
		str("trackId"),
		integer("concealedSamples"),
		integer("totalSamplesReceived"),
		integer("silentConcealedSamples"),
		integer("removedSamplesForAcceleration"),
		float("audioLevel"),
		str("mediaType"),
		float("totalAudioEnergy"),
		float("totalSamplesDuration"),
		boolean("remoteSource"),
		float("jitterBufferEmittedCount"),
		float("jitterBufferDelay"),
		integer("insertedSamplesForDeceleration"),
		integer("hugeFramesSent"),
		integer("framesWidth"),
		integer("framesSent"),
		integer("framesReceived"),
		integer("framesDropped"),
		integer("framesDecoded"),
		integer("framesHeight"),
		boolean("ended"),
		boolean("detached"),
		integer("concealmentEvents"),
		str("mediaSourceId"),
		str(fieldMarker),
	},
	UserMediaError: {
		reqStr(fieldServiceUUID),
		str(fieldServiceName),
		str(fieldMediaUnitID),
		str(fieldCallName),
		str(fieldUserID),
		reqStr(fieldBrowserID),
		str(fieldPeerConnectionUUID),
		reqInt(fieldTimestamp),
		reqStr("message"),
		str(fieldMarker),
	},
}

// Schema returns the ordered column list of the table backing an entry type.
// Every type in All has a schema; asking for anything else returns nil.
func Schema(t Type) warehouse.Schema {
	return schemas[t]
}
