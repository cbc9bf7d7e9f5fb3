package game

import (
	"fmt"
	"log"

	"github.com/chewxy/math32"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ShowcaseSettings 展示程序的全局覆盖设置
// 这些设置叠加在 YAML 配置之上，对所有进度单元生效
type ShowcaseSettings struct {
	// 进度设置
	ReverseAll       bool    `yaml:"reverseAll"`       // 反转所有单元的扫掠方向
	StartAngleOffset float32 `yaml:"startAngleOffset"` // 起始角偏移（度），0 ~ 360
	PercentStep      float32 `yaml:"percentStep"`      // 每次按键调整的百分比 1 ~ 50

	// 显示设置
	ShowOutline bool `yaml:"showOutline"` // 是否绘制扇形轮廓
	ShowLabels  bool `yaml:"showLabels"`  // 是否显示单元标签
}

// DefaultSettings 返回默认设置
func DefaultSettings() *ShowcaseSettings {
	return &ShowcaseSettings{
		ReverseAll:       false,
		StartAngleOffset: 0,
		PercentStep:      5,
		ShowOutline:      false,
		ShowLabels:       true,
	}
}

// SettingsManager 设置管理器
// 负责展示设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager    // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ShowcaseSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "showcase"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 从默认值开始反序列化，旧版本文件缺少的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.StartAngleOffset = normalizeDegrees(loaded.StartAngleOffset)
	loaded.PercentStep = clampStep(loaded.PercentStep)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ShowcaseSettings {
	return sm.settings
}

// ToggleReverse 切换全局反向
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) ToggleReverse() bool {
	sm.settings.ReverseAll = !sm.settings.ReverseAll
	return sm.settings.ReverseAll
}

// RotateStartAngle 调整起始角偏移，结果归一化到 [0,360)
func (sm *SettingsManager) RotateStartAngle(delta float32) float32 {
	sm.settings.StartAngleOffset = normalizeDegrees(sm.settings.StartAngleOffset + delta)
	return sm.settings.StartAngleOffset
}

// SetPercentStep 设置百分比步长，限制在 1 ~ 50
func (sm *SettingsManager) SetPercentStep(step float32) {
	sm.settings.PercentStep = clampStep(step)
}

// SetShowOutline 设置轮廓显示
func (sm *SettingsManager) SetShowOutline(enabled bool) {
	sm.settings.ShowOutline = enabled
}

// SetShowLabels 设置标签显示
func (sm *SettingsManager) SetShowLabels(enabled bool) {
	sm.settings.ShowLabels = enabled
}

// EffectiveReverse 返回单元叠加全局设置后的方向
func (s *ShowcaseSettings) EffectiveReverse(cellReverse bool) bool {
	return cellReverse != s.ReverseAll
}

// EffectiveStartAngle 返回单元叠加偏移后的起始角
func (s *ShowcaseSettings) EffectiveStartAngle(cellAngle float32) float32 {
	return cellAngle + s.StartAngleOffset
}

func normalizeDegrees(deg float32) float32 {
	d := math32.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// clampStep 将步长限制在 1 ~ 50 范围内
func clampStep(step float32) float32 {
	if step < 1 {
		return 1
	}
	if step > 50 {
		return 50
	}
	return step
}
