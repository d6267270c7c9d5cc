package qhy

import (
	"fmt"
	"sort"
)

// ControlID identifies a camera control in the vendor SDK. The IDs and
// names below were captured from a QHY600U3; the dummy only exposes
// them as a static registry for diagnostics and validation.
type ControlID int32

const (
	ControlBrightness                 ControlID = 0
	ControlContrast                   ControlID = 1
	ControlWBR                        ControlID = 2
	ControlWBB                        ControlID = 3
	ControlWBG                        ControlID = 4
	ControlGamma                      ControlID = 5
	ControlGain                       ControlID = 6
	ControlOffset                     ControlID = 7
	ControlExposure                   ControlID = 8
	ControlSpeed                      ControlID = 9
	ControlTransferBit                ControlID = 10
	ControlChannels                   ControlID = 11
	ControlUSBTraffic                 ControlID = 12
	ControlRowNoiseRe                 ControlID = 13
	ControlCurTemp                    ControlID = 14
	ControlCurPWM                     ControlID = 15
	ControlManualPWM                  ControlID = 16
	ControlCFWPort                    ControlID = 17
	ControlCooler                     ControlID = 18
	ControlST4Port                    ControlID = 19
	CamColor                          ControlID = 20
	CamBin1x1Mode                     ControlID = 21
	CamBin2x2Mode                     ControlID = 22
	CamBin3x3Mode                     ControlID = 23
	CamBin4x4Mode                     ControlID = 24
	CamMechanicalShutter              ControlID = 25
	CamTriggerInterface               ControlID = 26
	CamTECOverProtectInterface        ControlID = 27
	CamSignalClampInterface           ControlID = 28
	CamFineToneInterface              ControlID = 29
	CamShutterMotorHeatingInterface   ControlID = 30
	CamCalibrateFPNInterface          ControlID = 31
	CamChipTemperatureSensorInterface ControlID = 32
	CamUSBReadoutSlowestInterface     ControlID = 33
	Cam8Bits                          ControlID = 34
	Cam16Bits                         ControlID = 35
	CamGPS                            ControlID = 36
	CamIgnoreOverscanInterface        ControlID = 37
	QHYCCD3AAutoExposure              ControlID = 39
	QHYCCD3AAutoFocus                 ControlID = 40
	ControlAmpV                       ControlID = 41
	ControlVCam                       ControlID = 42
	CamViewMode                       ControlID = 43
	ControlCFWSlotsNum                ControlID = 44
	IsExposingDone                    ControlID = 45
	ScreenStretchB                    ControlID = 46
	ScreenStretchW                    ControlID = 47
	ControlDDR                        ControlID = 48
	CamLightPerformanceMode           ControlID = 49
	CamQHY5IIGuideMode                ControlID = 50
	DDRBufferCapacity                 ControlID = 51
	DDRBufferReadThreshold            ControlID = 52
	DefaultGain                       ControlID = 53
	DefaultOffset                     ControlID = 54
	OutputDataActualBits              ControlID = 55
	OutputDataAlignment               ControlID = 56
	CamSingleFrameMode                ControlID = 57
	CamLiveVideoMode                  ControlID = 58
	CamIsColor                        ControlID = 59
	ControlMaxIDError                 ControlID = 61
	CamHumidity                       ControlID = 62
	CamPressure                       ControlID = 63
	ControlVacuumPump                 ControlID = 64
	ControlSensorChamberCyclePump     ControlID = 65
	Cam32Bits                         ControlID = 66
	CamSensorULVOStatus               ControlID = 67
	CamSensorPhaseReTrain             ControlID = 68
	CamInitConfigFromFlash            ControlID = 69
	CamTriggerMode                    ControlID = 70
	CamTriggerOut                     ControlID = 71
	CamBurstMode                      ControlID = 72
	CamSpeakerLEDAlarm                ControlID = 73
	CamWatchDogFPGA                   ControlID = 74
	CamBin6x6Mode                     ControlID = 75
	CamBin8x8Mode                     ControlID = 76
	CamGlobalSensorGPSLED             ControlID = 77
	ControlImgProc                    ControlID = 78
	ControlRemoveRBI                  ControlID = 79
	ControlGlobalReset                ControlID = 80
	ControlFrameDetect                ControlID = 81
	CamGainDBConversion               ControlID = 82
	CamCurveSystemGain                ControlID = 83
	CamCurveFullWell                  ControlID = 84
	CamCurveReadoutNoise              ControlID = 85
	CamUseAverageBinning              ControlID = 86
	ControlOutsidePumpV2              ControlID = 87
	ControlAutoExposure               ControlID = 88
	ControlAutoExpTargetBrightness    ControlID = 89
	ControlAutoExpSampleArea          ControlID = 90
	ControlAutoExpExpMaxMS            ControlID = 91
	ControlAutoExpGainMax             ControlID = 92
	ControlErrorLED                   ControlID = 93
	ControlAutoWhiteBalance           ControlID = 1024
	ControlImageStabilization         ControlID = 1030
	ControlGainDB                     ControlID = 1031
	ControlDPC                        ControlID = 1032
	ControlDPCValue                   ControlID = 1033
	ControlHDR                        ControlID = 1034
	ControlHDRLk                      ControlID = 1035
	ControlHDRLb                      ControlID = 1036
	ControlHDRX                       ControlID = 1037
	ControlHDRShowKB                  ControlID = 1038
)

// controlNames maps IDs to the vendor header names, spelling included
// (CAM_TRIGER_*, CONTROL_SensorChamberCycle_PUMP, ... are verbatim).
var controlNames = map[ControlID]string{
	ControlBrightness:                 "CONTROL_BRIGHTNESS",
	ControlContrast:                   "CONTROL_CONTRAST",
	ControlWBR:                        "CONTROL_WBR",
	ControlWBB:                        "CONTROL_WBB",
	ControlWBG:                        "CONTROL_WBG",
	ControlGamma:                      "CONTROL_GAMMA",
	ControlGain:                       "CONTROL_GAIN",
	ControlOffset:                     "CONTROL_OFFSET",
	ControlExposure:                   "CONTROL_EXPOSURE",
	ControlSpeed:                      "CONTROL_SPEED",
	ControlTransferBit:                "CONTROL_TRANSFERBIT",
	ControlChannels:                   "CONTROL_CHANNELS",
	ControlUSBTraffic:                 "CONTROL_USBTRAFFIC",
	ControlRowNoiseRe:                 "CONTROL_ROWNOISERE",
	ControlCurTemp:                    "CONTROL_CURTEMP",
	ControlCurPWM:                     "CONTROL_CURPWM",
	ControlManualPWM:                  "CONTROL_MANULPWM",
	ControlCFWPort:                    "CONTROL_CFWPORT",
	ControlCooler:                     "CONTROL_COOLER",
	ControlST4Port:                    "CONTROL_ST4PORT",
	CamColor:                          "CAM_COLOR",
	CamBin1x1Mode:                     "CAM_BIN1X1MODE",
	CamBin2x2Mode:                     "CAM_BIN2X2MODE",
	CamBin3x3Mode:                     "CAM_BIN3X3MODE",
	CamBin4x4Mode:                     "CAM_BIN4X4MODE",
	CamMechanicalShutter:              "CAM_MECHANICALSHUTTER",
	CamTriggerInterface:               "CAM_TRIGER_INTERFACE",
	CamTECOverProtectInterface:        "CAM_TECOVERPROTECT_INTERFACE",
	CamSignalClampInterface:           "CAM_SINGNALCLAMP_INTERFACE",
	CamFineToneInterface:              "CAM_FINETONE_INTERFACE",
	CamShutterMotorHeatingInterface:   "CAM_SHUTTERMOTORHEATING_INTERFACE",
	CamCalibrateFPNInterface:          "CAM_CALIBRATEFPN_INTERFACE",
	CamChipTemperatureSensorInterface: "CAM_CHIPTEMPERATURESENSOR_INTERFACE",
	CamUSBReadoutSlowestInterface:     "CAM_USBREADOUTSLOWEST_INTERFACE",
	Cam8Bits:                          "CAM_8BITS",
	Cam16Bits:                         "CAM_16BITS",
	CamGPS:                            "CAM_GPS",
	CamIgnoreOverscanInterface:        "CAM_IGNOREOVERSCAN_INTERFACE",
	QHYCCD3AAutoExposure:              "QHYCCD_3A_AUTOEXPOSURE",
	QHYCCD3AAutoFocus:                 "QHYCCD_3A_AUTOFOCUS",
	ControlAmpV:                       "CONTROL_AMPV",
	ControlVCam:                       "CONTROL_VCAM",
	CamViewMode:                       "CAM_VIEW_MODE",
	ControlCFWSlotsNum:                "CONTROL_CFWSLOTSNUM",
	IsExposingDone:                    "IS_EXPOSING_DONE",
	ScreenStretchB:                    "ScreenStretchB",
	ScreenStretchW:                    "ScreenStretchW",
	ControlDDR:                        "CONTROL_DDR",
	CamLightPerformanceMode:           "CAM_LIGHT_PERFORMANCE_MODE",
	CamQHY5IIGuideMode:                "CAM_QHY5II_GUIDE_MODE",
	DDRBufferCapacity:                 "DDR_BUFFER_CAPACITY",
	DDRBufferReadThreshold:            "DDR_BUFFER_READ_THRESHOLD",
	DefaultGain:                       "DefaultGain",
	DefaultOffset:                     "DefaultOffset",
	OutputDataActualBits:              "OutputDataActualBits",
	OutputDataAlignment:               "OutputDataAlignment",
	CamSingleFrameMode:                "CAM_SINGLEFRAMEMODE",
	CamLiveVideoMode:                  "CAM_LIVEVIDEOMODE",
	CamIsColor:                        "CAM_IS_COLOR",
	ControlMaxIDError:                 "CONTROL_MAX_ID_Error",
	CamHumidity:                       "CAM_HUMIDITY",
	CamPressure:                       "CAM_PRESSURE",
	ControlVacuumPump:                 "CONTROL_VACUUM_PUMP",
	ControlSensorChamberCyclePump:     "CONTROL_SensorChamberCycle_PUMP",
	Cam32Bits:                         "CAM_32BITS",
	CamSensorULVOStatus:               "CAM_Sensor_ULVO_Status",
	CamSensorPhaseReTrain:             "CAM_SensorPhaseReTrain",
	CamInitConfigFromFlash:            "CAM_InitConfigFromFlash",
	CamTriggerMode:                    "CAM_TRIGER_MODE",
	CamTriggerOut:                     "CAM_TRIGER_OUT",
	CamBurstMode:                      "CAM_BURST_MODE",
	CamSpeakerLEDAlarm:                "CAM_SPEAKER_LED_ALARM",
	CamWatchDogFPGA:                   "CAM_WATCH_DOG_FPGA",
	CamBin6x6Mode:                     "CAM_BIN6X6MODE",
	CamBin8x8Mode:                     "CAM_BIN8X8MODE",
	CamGlobalSensorGPSLED:             "CAM_GlobalSensorGPSLED",
	ControlImgProc:                    "CONTROL_ImgProc",
	ControlRemoveRBI:                  "CONTROL_RemoveRBI",
	ControlGlobalReset:                "CONTROL_GlobalReset",
	ControlFrameDetect:                "CONTROL_FrameDetect",
	CamGainDBConversion:               "CAM_GainDBConversion",
	CamCurveSystemGain:                "CAM_CurveSystemGain",
	CamCurveFullWell:                  "CAM_CurveFullWell",
	CamCurveReadoutNoise:              "CAM_CurveReadoutNoise",
	CamUseAverageBinning:              "CAM_UseAverageBinning",
	ControlOutsidePumpV2:              "CONTROL_OUTSIDE_PUMP_V2",
	ControlAutoExposure:               "CONTROL_AUTOEXPOSURE",
	ControlAutoExpTargetBrightness:    "CONTROL_AUTOEXPTargetBrightness",
	ControlAutoExpSampleArea:          "CONTROL_AUTOEXPSampleArea",
	ControlAutoExpExpMaxMS:            "CONTROL_AUTOEXPexpMaxMS",
	ControlAutoExpGainMax:             "CONTROL_AUTOEXPgainMax",
	ControlErrorLED:                   "CONTROL_Error_Led",
	ControlAutoWhiteBalance:           "CONTROL_AUTOWHITEBALANCE",
	ControlImageStabilization:         "CONTROL_ImageStabilization",
	ControlGainDB:                     "CONTROL_GAINdB",
	ControlDPC:                        "CONTROL_DPC",
	ControlDPCValue:                   "CONTROL_DPC_value",
	ControlHDR:                        "CONTROL_HDR",
	ControlHDRLk:                      "CONTROL_HDR_L_k",
	ControlHDRLb:                      "CONTROL_HDR_L_b",
	ControlHDRX:                       "CONTROL_HDR_x",
	ControlHDRShowKB:                  "CONTROL_HDR_showKB",
}

// ControlName returns the vendor header name for a control ID, and
// whether the ID is known at all.
func ControlName(id ControlID) (string, bool) {
	name, ok := controlNames[id]
	return name, ok
}

// ControlIDs returns every known control ID in ascending order.
func ControlIDs() []ControlID {
	ids := make([]ControlID, 0, len(controlNames))
	for id := range controlNames {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (id ControlID) String() string {
	if name, ok := controlNames[id]; ok {
		return name
	}
	return fmt.Sprintf("ControlID(%d)", int32(id))
}
